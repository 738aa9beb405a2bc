package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"message": "done"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"message": "done"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email   string `validate:"required,email"`
		UserUID string `validate:"required,uuid"`
	}

	validate := validator.New()

	t.Run("отсутствуют обязательные поля", func(t *testing.T) {
		err := validate.Struct(payload{})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Equal(t, StatusError, resp.Status)
		assert.Contains(t, resp.Error, "field Email is a required field")
		assert.Contains(t, resp.Error, "field UserUID is a required field")
	})

	t.Run("некорректные значения", func(t *testing.T) {
		err := validate.Struct(payload{Email: "not-an-email", UserUID: "not-a-uuid"})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Contains(t, resp.Error, "field Email can contain only a valid email")
		assert.Contains(t, resp.Error, "field UserUID can contain only uuid")
	})
}
