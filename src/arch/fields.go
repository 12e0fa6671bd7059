package arch

import (
	"reflect"

	"github.com/c2h5oh/datasize"
)

// Kind tells how a parameter value is interpreted.
type Kind string

const (
	// KindCount is a dimensionless quantity (instances, depths, widths).
	KindCount Kind = "count"
	// KindAddress is a byte address in the accelerator address space.
	KindAddress Kind = "addr"
	// KindSize is a byte size or a byte stride.
	KindSize Kind = "size"
)

// Field is a read-only view of one architecture parameter.
type Field struct {
	Name     string
	Group    string
	Kind     Kind
	Sequence bool
	Values   []int64
}

// Value returns the scalar value of the field, or the first element of a
// sequence.
func (field Field) Value() int64 {
	if len(field.Values) == 0 {
		return 0
	}
	return field.Values[0]
}

// ByteSize converts a size field into a datasize.ByteSize. The bool return is
// false for counts and addresses.
func (field Field) ByteSize() (datasize.ByteSize, bool) {
	if field.Kind != KindSize || field.Sequence || field.Value() < 0 {
		return 0, false
	}
	return datasize.ByteSize(field.Value()), true
}

// Fields lists every parameter in declaration order.
func (config ArchitectureConfig) Fields() []Field {
	value := reflect.ValueOf(config)
	typ := value.Type()

	fields := make([]Field, 0, typ.NumField())
	for idx := 0; idx < typ.NumField(); idx++ {
		structField := typ.Field(idx)
		field := Field{
			Name:  structField.Tag.Get("json"),
			Group: structField.Tag.Get("group"),
			Kind:  Kind(structField.Tag.Get("arch")),
		}

		fieldValue := value.Field(idx)
		switch fieldValue.Kind() {
		case reflect.Array, reflect.Slice:
			field.Sequence = true
			field.Values = make([]int64, fieldValue.Len())
			for elem := range field.Values {
				field.Values[elem] = fieldValue.Index(elem).Int()
			}
		default:
			field.Values = []int64{fieldValue.Int()}
		}

		fields = append(fields, field)
	}
	return fields
}

// Lookup returns the parameter with the given external name.
func (config ArchitectureConfig) Lookup(name string) (Field, bool) {
	for _, field := range config.Fields() {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
