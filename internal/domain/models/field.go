package models

// Field is one column assignment produced by a typed update variant.
// Column names come only from the Fields() methods in this package.
type Field struct {
	Column string
	Value  any
}

type fieldSet []Field

func (fs *fieldSet) str(column string, v *string) {
	if v != nil {
		*fs = append(*fs, Field{Column: column, Value: *v})
	}
}

func (fs *fieldSet) int(column string, v *int) {
	if v != nil {
		*fs = append(*fs, Field{Column: column, Value: *v})
	}
}

func (fs *fieldSet) float(column string, v *float64) {
	if v != nil {
		*fs = append(*fs, Field{Column: column, Value: *v})
	}
}

// ref sets a nullable foreign key; a pointer to 0 clears it.
func (fs *fieldSet) ref(column string, v *int64) {
	if v == nil {
		return
	}
	if *v <= 0 {
		*fs = append(*fs, Field{Column: column, Value: nil})
		return
	}
	*fs = append(*fs, Field{Column: column, Value: *v})
}
