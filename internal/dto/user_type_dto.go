package dto

type UserTypeRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=5,max=200"`

	CanLogin *bool `json:"can_login,omitempty"`

	CanCreateOwn *bool `json:"can_create_own,omitempty"`
	CanReadOwn   *bool `json:"can_read_own,omitempty"`
	CanUpdateOwn *bool `json:"can_update_own,omitempty"`
	CanDeleteOwn *bool `json:"can_delete_own,omitempty"`

	CanCreateAll *bool `json:"can_create_all,omitempty"`
	CanReadAll   *bool `json:"can_read_all,omitempty"`
	CanUpdateAll *bool `json:"can_update_all,omitempty"`
	CanDeleteAll *bool `json:"can_delete_all,omitempty"`
}

// BoolOr dereferences an optional flag, falling back when absent.
func BoolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
