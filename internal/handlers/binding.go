package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

// bindingValidator plugs the schema validator into gin's binding, so
// ShouldBindJSON reports models.ValidationErrors.
type bindingValidator struct{}

func (bindingValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return models.Validate(obj)
	case reflect.Slice, reflect.Array:
		var all models.ValidationErrors
		for i := 0; i < value.Len(); i++ {
			err := bindingValidator{}.ValidateStruct(value.Index(i).Interface())
			if err == nil {
				continue
			}
			var verrs models.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, fe := range verrs {
				fe.Field = fmt.Sprintf("[%d].%s", i, fe.Field)
				all = append(all, fe)
			}
		}
		if len(all) > 0 {
			return all
		}
	}
	return nil
}

func (bindingValidator) Engine() any {
	return models.Engine()
}

// fieldError is the JSON form of one validation failure
type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// respondError writes err as a JSON error. Validation failures are the
// client's fault (400), anything else is ours (500).
func respondError(c *gin.Context, err error) {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field, Rule: fe.Rule, Message: fe.Message()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// bindJSON binds the request body into obj and validates it. On failure
// the response is already written and false is returned.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(c, verrs)
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// decodeJSON reads the body into obj without validating it. It is used
// for records whose constructor validates after filling in defaults.
func decodeJSON(c *gin.Context, obj any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// userID reads the owning user from the user_id query parameter.
func userID(c *gin.Context) (string, bool) {
	id := c.Query("user_id")
	if id == "" {
		respondError(c, models.ValidationErrors{{Field: "user_id", Rule: "required"}})
		return "", false
	}
	return id, true
}
