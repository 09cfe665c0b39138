package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shopsync/backend/internal/domain/product"
)

// The sku binding tag delegates to the domain SKU rules so requests are
// rejected before reaching the application layer.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sku", func(fl validator.FieldLevel) bool {
			_, err := product.NewSku(fl.Field().String())
			return err == nil
		})
	}
}
