package handler

type userCreateRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role"     validate:"required"`
}

type userEditRequest struct {
	EditorName  string `json:"editorName" validate:"required"`
	UserName    string `json:"userName"   validate:"required"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
	NewRole     string `json:"newRole"    validate:"required"`
}

type userRemoveRequest struct {
	RemoverName string `json:"removerName" validate:"required"`
	UserName    string `json:"userName"    validate:"required"`
	Password    string `json:"password"`
}

// credentialsRequest serves both user/authenticate and user/get.
type credentialsRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password"`
}
