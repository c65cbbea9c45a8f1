package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInputIncomplete is wrapped by every missing-field error. The payload
	// for such input is empty or not worth exporting.
	ErrInputIncomplete = errors.New("input is incomplete")
	ErrMissingURL      = fmt.Errorf("%w: url is required", ErrInputIncomplete)
	ErrMissingSSID     = fmt.Errorf("%w: network name is required", ErrInputIncomplete)
	ErrMissingPassword = fmt.Errorf("%w: password is required for secured networks", ErrInputIncomplete)
	ErrMissingName     = fmt.Errorf("%w: first or last name is required", ErrInputIncomplete)

	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidEncryption = errors.New("invalid encryption")

	// ErrInvalidStyle is wrapped by every out-of-range style error.
	ErrInvalidStyle              = errors.New("invalid style")
	ErrPaddingOutOfRange         = fmt.Errorf("%w: padding out of range", ErrInvalidStyle)
	ErrBorderThicknessOutOfRange = fmt.Errorf("%w: border thickness out of range", ErrInvalidStyle)
	ErrBorderRadiusOutOfRange    = fmt.Errorf("%w: border radius out of range", ErrInvalidStyle)
)
