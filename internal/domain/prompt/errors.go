package prompt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the prompt domain. Callers match with errors.Is; the
// concrete types below carry the detail shown to users.
var (
	ErrNotFound              = errors.New("prompt not found")
	ErrAlreadyExists         = errors.New("prompt already exists")
	ErrUnsupportedType       = errors.New("unsupported prompt type")
	ErrActiveProjectRequired = errors.New("active project required")
)

// NotFoundError is returned when a referenced prompt id is absent.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Prompt with id %d not found.", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BlueprintNotFoundError is returned when the active project has no
// blueprint prompt.
type BlueprintNotFoundError struct{}

func (e *BlueprintNotFoundError) Error() string {
	return "Blueprint prompt not found for the active project."
}

func (e *BlueprintNotFoundError) Is(target error) bool { return target == ErrNotFound }

// AlreadyExistsError is returned when the (name, project_id) uniqueness
// rule would be broken.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("A prompt named %q already exists in this scope.", e.Name)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// ActiveProjectRequiredError is returned by operations that need an active
// project when none is set. Action completes the sentence shown to the user,
// e.g. "create a project prompt".
type ActiveProjectRequiredError struct {
	Action string
}

func (e *ActiveProjectRequiredError) Error() string {
	return fmt.Sprintf("An active project is required to %s.", e.Action)
}

func (e *ActiveProjectRequiredError) Is(target error) bool { return target == ErrActiveProjectRequired }

// UnsupportedTypeError is returned when an operation is invoked with a
// category it does not support.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("Prompt type %q is not supported for this operation.", string(e.Type))
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }
