package internal_test

import (
	"testing"

	"github.com/regiellis/qode-chair-go/internal"
	"github.com/stretchr/testify/assert"
)

func TestRouterRoutesCommandAndAliases(t *testing.T) {
	router := internal.NewCLIRouter()
	calls := 0
	router.RegisterCommand(&internal.Command{
		Name:    "check",
		Aliases: []string{"doctor"},
		Handler: func() int {
			calls++
			return 7
		},
	})

	code, handled := router.Route([]string{"qode-chair", "check"})
	assert.True(t, handled)
	assert.Equal(t, 7, code)

	code, handled = router.Route([]string{"qode-chair", "doctor"})
	assert.True(t, handled)
	assert.Equal(t, 7, code)
	assert.Equal(t, 2, calls)
}

func TestRouterUnknownCommand(t *testing.T) {
	router := internal.NewCLIRouter()
	_, handled := router.Route([]string{"qode-chair", "bogus"})
	assert.False(t, handled)
}

func TestRouterNoCommand(t *testing.T) {
	router := internal.NewCLIRouter()
	code, handled := router.Route([]string{"qode-chair"})
	assert.False(t, handled)
	assert.Zero(t, code)
}
