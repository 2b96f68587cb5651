package golang

import (
	"go/token"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/codegen/typeresolve"
)

// UnknownType marks fields whose semantic tag could not be resolved. It is
// left undefined so the generated package does not build until fixed.
const UnknownType = "UNKNOWN"

var goTypes = map[typeresolve.Kind]string{
	typeresolve.KindBool:               "bool",
	typeresolve.KindUint8:              "uint8",
	typeresolve.KindUint16:             "uint16",
	typeresolve.KindUint32:             "uint32",
	typeresolve.KindUint64:             "uint64",
	typeresolve.KindBytes:              "[]byte",
	typeresolve.KindFloat8:             "types.Float8",
	typeresolve.KindFloat16:            "types.Float16",
	typeresolve.KindFloat32:            "float32",
	typeresolve.KindText:               "string",
	typeresolve.KindTemperature:        "types.Temperature",
	typeresolve.KindTemperatureHighRes: "types.TemperatureHighRes",
	typeresolve.KindPressure:           "types.Pressure",
	typeresolve.KindPressureHighRes:    "types.PressureHighRes",
	typeresolve.KindDate:               "types.Date",
	typeresolve.KindTime:               "types.Time",
	typeresolve.KindLatitude:           "types.Latitude",
	typeresolve.KindLongitude:          "types.Longitude",
	typeresolve.KindBitfield:           "types.Bitfield",
}

func goType(st typeresolve.Storage) string {
	if st.Kind == typeresolve.KindLookup {
		return st.Lookup
	}
	if t, ok := goTypes[st.Kind]; ok {
		return t
	}
	return UnknownType
}

// memberName exports a field identifier: "engineSpeed" -> "EngineSpeed".
func memberName(id string) string {
	return common.SanitizeLeadingDigit(common.ToTypeName(id))
}

// localName keeps a field identifier usable as a local variable inside a
// decoder, where "data" is the payload and "types" the imported package.
func localName(id string) string {
	name := common.ToLowerCamel(id)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "f" + name
	}
	if token.IsKeyword(name) || name == "data" || name == "types" {
		name += "_"
	}
	return name
}

