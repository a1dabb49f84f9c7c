package processor

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the resolved name and priority. Extend never calls it;
// hosts that load definitions from untrusted sources can opt in.
func (d *Definition) Validate() error {
	errs := validation.Errors{
		"name": validation.Validate(strings.TrimSpace(d.Name()),
			validation.Required.ErrorObject(
				validation.NewError("processor.name_required", "name is required"))),
		"priority": validation.Validate(d.Priority(),
			validation.Min(MinPriority).ErrorObject(
				validation.NewError("processor.priority_out_of_range", "priority must be between 0 and 100")),
			validation.Max(MaxPriority).ErrorObject(
				validation.NewError("processor.priority_out_of_range", "priority must be between 0 and 100"))),
	}.Filter()

	return wrapValidationError(errs)
}
