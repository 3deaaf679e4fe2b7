package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utmbiblio/library-service/internal/model"
)

func TestIsLibraryStaff(t *testing.T) {
	t.Run("absent user is not staff", func(t *testing.T) {
		assert.False(t, IsLibraryStaff(nil))
	})

	t.Run("reserved email is staff regardless of role", func(t *testing.T) {
		u := &model.User{Email: "biblioteca@mixteco.utm.mx", Role: model.RolePatron}
		assert.True(t, IsLibraryStaff(u))
	})

	t.Run("librarian and admin roles are staff", func(t *testing.T) {
		assert.True(t, IsLibraryStaff(&model.User{Email: "x@utm.mx", Role: model.RoleLibrarian}))
		assert.True(t, IsLibraryStaff(&model.User{Email: "x@utm.mx", Role: model.RoleAdmin}))
	})

	t.Run("plain patron is not staff", func(t *testing.T) {
		assert.False(t, IsLibraryStaff(&model.User{Email: "x@utm.mx", Role: model.RolePatron}))
	})
}

func TestCanBypassAuthentication(t *testing.T) {
	staff := &model.User{Email: "admin@mixteco.utm.mx"}
	patron := &model.User{Email: "p@utm.mx", Role: model.RolePatron}

	assert.True(t, CanBypassAuthentication(staff, false), "staff bypass independent of demo mode")
	assert.True(t, CanBypassAuthentication(patron, true), "demo mode opens the gate for non-staff")
	assert.True(t, CanBypassAuthentication(nil, true))
	assert.False(t, CanBypassAuthentication(patron, false))
	assert.False(t, CanBypassAuthentication(nil, false))
}

func TestManagementPredicates(t *testing.T) {
	staff := &model.User{Email: "x@utm.mx", Role: model.RoleLibrarian}
	patron := &model.User{Email: "p@utm.mx", Role: model.RolePatron}

	// Catalog editing is ungated, even for absent users.
	assert.True(t, CanManageBooks(nil))
	assert.True(t, CanManageBooks(patron))
	assert.True(t, CanManageDigitalBooks(nil))

	assert.False(t, CanManageTheses(nil))
	assert.False(t, CanManageTheses(patron))
	assert.True(t, CanManageTheses(staff))

	assert.False(t, CanManageUsers(nil))
	assert.True(t, CanManageUsers(staff))
}
