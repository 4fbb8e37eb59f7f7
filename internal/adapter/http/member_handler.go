package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	memberUC "fondo-backend/internal/usecase/member"
)

type MemberHandler struct{ uc *memberUC.Usecase }

func NewMemberHandler(uc *memberUC.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type registerMemberReq struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	DocumentID string `json:"document_id" validate:"required"`
	Role       string `json:"role"        validate:"omitempty,oneof=asociado cliente"`
}

func (h *MemberHandler) Register(c echo.Context) error {
	var req registerMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	m, err := h.uc.Register(c.Request().Context(), memberUC.RegisterInput{
		Name: req.Name, Email: req.Email, DocumentID: req.DocumentID, Role: req.Role,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MemberHandler) Get(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
