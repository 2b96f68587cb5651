package rust

import "github.com/n2kgen/n2kgen/internal/codegen/typeresolve"

// UnknownType marks fields whose semantic tag could not be resolved. It is
// deliberately undefined so the generated crate fails to build until fixed.
const UnknownType = "UNKNOWN"

var rustTypes = map[typeresolve.Kind]string{
	typeresolve.KindBool:               "bool",
	typeresolve.KindUint8:              "u8",
	typeresolve.KindUint16:             "u16",
	typeresolve.KindUint32:             "u32",
	typeresolve.KindUint64:             "u64",
	typeresolve.KindBytes:              "Vec<u8>",
	typeresolve.KindFloat8:             "f8",
	typeresolve.KindFloat16:            "f16",
	typeresolve.KindFloat32:            "f32",
	typeresolve.KindText:               "String",
	typeresolve.KindTemperature:        "N2kTemperature",
	typeresolve.KindTemperatureHighRes: "N2kTemperatureHighRes",
	typeresolve.KindPressure:           "N2kPressure",
	typeresolve.KindPressureHighRes:    "N2kPressureHighRes",
	typeresolve.KindDate:               "N2kDate",
	typeresolve.KindTime:               "N2kTime",
	typeresolve.KindLatitude:           "N2kLatitude",
	typeresolve.KindLongitude:          "N2kLongitude",
	typeresolve.KindBitfield:           "Bitfield",
}

func rustType(st typeresolve.Storage) string {
	if st.Kind == typeresolve.KindLookup {
		return st.Lookup
	}
	if t, ok := rustTypes[st.Kind]; ok {
		return t
	}
	return UnknownType
}

// rustIdent escapes keywords as raw identifiers. The path keywords cannot be
// raw identifiers and get a trailing underscore instead.
func rustIdent(name string) string {
	switch name {
	case "crate", "self", "Self", "super":
		return name + "_"
	}
	if isRustKeyword(name) {
		return "r#" + name
	}
	return name
}


func isRustKeyword(s string) bool {
	keywords := map[string]bool{
		"as": true, "break": true, "const": true, "continue": true, "crate": true,
		"else": true, "enum": true, "extern": true, "false": true, "fn": true,
		"for": true, "if": true, "impl": true, "in": true, "let": true,
		"loop": true, "match": true, "mod": true, "move": true, "mut": true,
		"pub": true, "ref": true, "return": true, "self": true, "Self": true,
		"static": true, "struct": true, "super": true, "trait": true, "true": true,
		"type": true, "unsafe": true, "use": true, "where": true, "while": true,
		"async": true, "await": true, "dyn": true,
	}
	return keywords[s]
}
