package generation

import (
	"ifacegen/internal/metadata"
	"ifacegen/internal/types"
)

// How an argument is handed to the underlying call.
type ArgConversion int

const (
	ArgPass ArgConversion = iota
	ArgZero
	ArgReinterpret
	ArgStatic
)

// Which call variant forwards the message.
type CallShape int

const (
	CallNone CallShape = iota
	CallSingle
	CallDual
	CallString
	CallPointer
)

// How the call result becomes the method result.
type ReturnWrap int

const (
	ReturnPlain ReturnWrap = iota
	ReturnDiscard
	ReturnStatic
	ReturnReinterpret
)

// C++ types the word and long arguments are converted to.
const (
	WordSlotType = "uintptr_t"
	LongSlotType = "intptr_t"
)

// Plan is the decision made for a single record, before any text is produced.
type Plan struct {
	Record metadata.Record
	Shape  CallShape
	Return ReturnWrap
	Args   [2]ArgConversion
}

func classifyArg(table *types.Table, param metadata.Parameter) ArgConversion {
	switch {
	case param.Name == "":
		return ArgZero
	case table.IsPointer(param.Type):
		return ArgReinterpret
	case !table.IsBasic(param.Type):
		return ArgStatic
	default:
		return ArgPass
	}
}

func classifyCall(table *types.Table, record metadata.Record) CallShape {
	long := record.Long()

	switch {
	case table.IsString(long.Type):
		return CallString
	case table.IsPointer(long.Type):
		return CallPointer
	case !long.IsEmpty():
		return CallDual
	case !record.Word().IsEmpty():
		return CallSingle
	default:
		return CallNone
	}
}

func classifyReturn(table *types.Table, returnType string) ReturnWrap {
	switch {
	case table.IsOpaquePointer(returnType):
		return ReturnReinterpret
	case !table.IsBasic(returnType) || table.NarrowsOnReturn(returnType):
		return ReturnStatic
	case table.IsVoid(returnType):
		return ReturnDiscard
	default:
		return ReturnPlain
	}
}

// NewPlan classifies the record's call shape, argument conversions and return wrapping.
func NewPlan(table *types.Table, record metadata.Record) Plan {
	return Plan{
		Record: record,
		Shape:  classifyCall(table, record),
		Return: classifyReturn(table, record.ReturnType),
		Args: [2]ArgConversion{
			classifyArg(table, record.Word()),
			classifyArg(table, record.Long()),
		},
	}
}
