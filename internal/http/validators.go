package httpapi

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cosmos/internal/domain"
)

// Магазин торгует космической атрибутикой: имя товара обязано
// упоминать хотя бы одно из этих слов.
var cosmicWords = []string{"star", "galaxy", "nebula", "comet", "astro", "cosmic", "orbit"}

var validatorsOnce sync.Once

// registerValidators вешает доменные проверки на биндинг gin:
// тег "sku" и тег "cosmic" для имён.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
			return domain.ValidateSku(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("cosmic", func(fl validator.FieldLevel) bool {
			hay := strings.ToLower(fl.Field().String())
			for _, w := range cosmicWords {
				if strings.Contains(hay, w) {
					return true
				}
			}
			return false
		})
	})
}
