package translator

// DefaultGlobals returns the standard jsxx host object registry: IO, JSON
// and Symbol, each backed by a factory function in the runtime's
// global_*.cpp translation units. WASI is not part of this set; callers
// that want it append WASIGlobal() themselves (e.g. only under --wasm).
func DefaultGlobals() []Global {
	return []Global{
		IOGlobal(),
		JSONGlobal(),
		SymbolGlobal(),
	}
}

// IOGlobal describes the IO host object (write_to_stdout and friends).
func IOGlobal() Global {
	return Global{
		Name:              "IO",
		AdditionalHeaders: []string{"runtime/global_io.hpp"},
		Factory:           "create_IO_global()",
	}
}

// JSONGlobal describes the JSON host object (JSON.stringify/parse).
func JSONGlobal() Global {
	return Global{
		Name:              "JSON",
		AdditionalHeaders: []string{"runtime/global_json.hpp"},
		Factory:           "create_JSON_global()",
	}
}

// SymbolGlobal describes the Symbol host object.
func SymbolGlobal() Global {
	return Global{
		Name:              "Symbol",
		AdditionalHeaders: []string{"runtime/global_symbol.hpp"},
		Factory:           "create_symbol_global()",
	}
}

// WASIGlobal describes the WASI host object, injected only when targeting
// WebAssembly.
func WASIGlobal() Global {
	return Global{
		Name:              "WASI",
		AdditionalHeaders: []string{"runtime/global_wasi.hpp"},
		Factory:           "create_WASI_global()",
	}
}
