package datafiles

import (
	"errors"
	"sort"
	"strings"
)

// ErrValidation is matched by errors.Is on any ValidationErrors value.
var ErrValidation = errors.New("datafiles: validation failed")

// FieldError is a single user-facing validation message.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered set of messages produced by one resolution.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, string(fe.Field)+": "+fe.Message)
	}
	return "datafiles: " + strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, ErrValidation) succeed.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether the field carries an error.
func (v ValidationErrors) Has(f Field) bool {
	_, ok := v.lookup(f)
	return ok
}

// Message returns the message for a field, or "".
func (v ValidationErrors) Message(f Field) string {
	msg, _ := v.lookup(f)
	return msg
}

// Fields lists the fields with errors in canonical order.
func (v ValidationErrors) Fields() []Field {
	out := make([]Field, 0, len(v))
	for _, fe := range v {
		out = append(out, fe.Field)
	}
	return out
}

// Map returns field name to message.
func (v ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[string(fe.Field)] = fe.Message
	}
	return out
}

func (v ValidationErrors) lookup(f Field) (string, bool) {
	for _, fe := range v {
		if fe.Field == f {
			return fe.Message, true
		}
	}
	return "", false
}

// add records a message once per field; the first message wins.
func (v *ValidationErrors) add(f Field, msg string) {
	if v.Has(f) {
		return
	}
	*v = append(*v, FieldError{Field: f, Message: msg})
}

// Merge combines two error sets in canonical field order.
func (v ValidationErrors) Merge(other ValidationErrors) ValidationErrors {
	if len(v) == 0 && len(other) == 0 {
		return nil
	}
	out := make(ValidationErrors, 0, len(v)+len(other))
	out = append(out, v...)
	for _, fe := range other {
		out.add(fe.Field, fe.Message)
	}
	return out.sorted()
}

func (v ValidationErrors) sorted() ValidationErrors {
	sort.SliceStable(v, func(i, j int) bool {
		return fieldRank(v[i].Field) < fieldRank(v[j].Field)
	})
	return v
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
