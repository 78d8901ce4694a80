package validators

import (
	"github.com/go-playground/validator/v10"
)

// SupportedKeySizes lists the accepted prime sizes in bits.
var SupportedKeySizes = []int64{8, 16, 32, 64, 128, 256, 512, 1024, 2048}

// KeySizeValidation validates that a prime size in bits is one of SupportedKeySizes.
func KeySizeValidation(fl validator.FieldLevel) bool {
	var keySize int64
	switch fl.Field().CanInt() {
	case true:
		keySize = fl.Field().Int()
	default:
		keySize = int64(fl.Field().Uint())
	}

	for _, supported := range SupportedKeySizes {
		if keySize == supported {
			return true
		}
	}
	return false
}
