package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init membuat validator bawaan Gin melaporkan nama field sesuai tag json
// (misal `json:"leave_type_id"` jadi "leave_type_id", bukan "LeaveTypeID"),
// supaya pesan error binding cocok dengan payload yang dikirim client.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
