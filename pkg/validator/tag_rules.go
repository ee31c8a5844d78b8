package validator

import (
	"errors"
	"fmt"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// tagEngine is shared; *playground.Validate caches parsed tags and is safe
// for concurrent use.
var tagEngine = sync.OnceValue(func() *playground.Validate {
	return playground.New()
})

// Tag checks the value against a go-playground/validator tag expression such
// as "required,email" or "min=3,max=20". The failing tag is available to the
// message as {Tag} and its parameter as {TagParam}. An unknown or malformed
// tag is reported as ErrInvalidTag when the check runs.
func Tag(tag string) *Check {
	return NewCheck("tag", "'{PropertyName}' failed the '{Tag}' rule.", func(ctx *PropertyContext) (ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				ok, err = false, fmt.Errorf("%w: %q on %s: %v", ErrInvalidTag, tag, ctx.PropertyPath, r)
			}
		}()

		verr := tagEngine().Var(ctx.PropertyValue, tag)
		if verr == nil {
			return true, nil
		}

		var fieldErrs playground.ValidationErrors
		if errors.As(verr, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			ctx.MessageFormatter().
				AppendArgument("Tag", fe.Tag()).
				AppendArgument("TagParam", fe.Param())
			return false, nil
		}
		return false, fmt.Errorf("%w: %q on %s: %v", ErrInvalidTag, tag, ctx.PropertyPath, verr)
	}).WithArg("Tag", tag)
}
