package openal

import (
	"errors"
	"unsafe"

	"github.com/jupiterrider/ffi"

	"github.com/amikos-tech/pure-native/native"
)

// symbolLookup resolves an exported symbol of a loaded library.
type symbolLookup func(handle native.Handle, name string) (uintptr, error)

type ffiCall func(rValue unsafe.Pointer, aValues ...unsafe.Pointer)

type ffiOpts struct {
	sym    string
	rType  *ffi.Type
	aTypes []*ffi.Type
}

// functions holds the bound ALC/AL entry points. Pointer arguments are passed
// as uintptr; buffers handed to native code are kept alive by the caller.
type functions struct {
	openDevice         func(name *byte) Device
	closeDevice        func(device Device) bool
	createContext      func(device Device, attributes *int32) Context
	makeContextCurrent func(context Context) bool
	destroyContext     func(context Context)
	getString          func(device Device, param int32) uintptr
	alGetString        func(param int32) uintptr
}

type binder struct {
	opts ffiOpts
	bind func(fns *functions, call ffiCall)
}

// prepare resolves opts.sym and builds its call interface.
func prepare(handle native.Handle, lookup symbolLookup, opts ffiOpts) (ffiCall, error) {
	fn, err := lookup(handle, opts.sym)
	if err != nil {
		return nil, &SymbolError{Symbol: opts.sym, Err: err}
	}
	if fn == 0 {
		return nil, &SymbolError{Symbol: opts.sym, Err: errors.New("symbol address is nil")}
	}

	var cif ffi.Cif
	if status := ffi.PrepCif(
		&cif,
		ffi.DefaultAbi,
		uint32(len(opts.aTypes)),
		opts.rType,
		opts.aTypes...,
	); status != ffi.OK {
		return nil, errors.New(opts.sym + ": " + status.String())
	}

	return func(rValue unsafe.Pointer, aValues ...unsafe.Pointer) {
		ffi.Call(&cif, fn, rValue, aValues...)
	}, nil
}

func loadFunctions(handle native.Handle, lookup symbolLookup) (*functions, error) {
	fns := &functions{}
	for _, b := range binders {
		call, err := prepare(handle, lookup, b.opts)
		if err != nil {
			return nil, err
		}
		b.bind(fns, call)
	}
	return fns, nil
}

// Small integer returns are widened by libffi to a full register, so boolean
// results are read into a uint64.
var binders = []binder{
	{
		opts: ffiOpts{
			sym:    "alcOpenDevice",
			rType:  &ffi.TypePointer,
			aTypes: []*ffi.Type{&ffi.TypePointer},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.openDevice = func(name *byte) Device {
				var device Device
				call(unsafe.Pointer(&device), unsafe.Pointer(&name))
				return device
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alcCloseDevice",
			rType:  &ffi.TypeUint8,
			aTypes: []*ffi.Type{&ffi.TypePointer},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.closeDevice = func(device Device) bool {
				var result uint64
				call(unsafe.Pointer(&result), unsafe.Pointer(&device))
				return uint8(result) != 0
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alcCreateContext",
			rType:  &ffi.TypePointer,
			aTypes: []*ffi.Type{&ffi.TypePointer, &ffi.TypePointer},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.createContext = func(device Device, attributes *int32) Context {
				var context Context
				call(unsafe.Pointer(&context), unsafe.Pointer(&device), unsafe.Pointer(&attributes))
				return context
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alcMakeContextCurrent",
			rType:  &ffi.TypeUint8,
			aTypes: []*ffi.Type{&ffi.TypePointer},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.makeContextCurrent = func(context Context) bool {
				var result uint64
				call(unsafe.Pointer(&result), unsafe.Pointer(&context))
				return uint8(result) != 0
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alcDestroyContext",
			rType:  &ffi.TypeVoid,
			aTypes: []*ffi.Type{&ffi.TypePointer},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.destroyContext = func(context Context) {
				call(nil, unsafe.Pointer(&context))
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alcGetString",
			rType:  &ffi.TypePointer,
			aTypes: []*ffi.Type{&ffi.TypePointer, &ffi.TypeSint32},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.getString = func(device Device, param int32) uintptr {
				var result uintptr
				call(unsafe.Pointer(&result), unsafe.Pointer(&device), unsafe.Pointer(&param))
				return result
			}
		},
	},
	{
		opts: ffiOpts{
			sym:    "alGetString",
			rType:  &ffi.TypePointer,
			aTypes: []*ffi.Type{&ffi.TypeSint32},
		},
		bind: func(fns *functions, call ffiCall) {
			fns.alGetString = func(param int32) uintptr {
				var result uintptr
				call(unsafe.Pointer(&result), unsafe.Pointer(&param))
				return result
			}
		},
	},
}
