package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avdeev-m/finance-tracker/internal/model"
	"github.com/avdeev-m/finance-tracker/internal/repository"
	"github.com/avdeev-m/finance-tracker/internal/service"
)

type registerRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user := &model.User{
		FullName:        req.FullName,
		Email:           req.Email,
		ProfileImageURL: req.ProfileImageURL,
	}
	token, err := h.auth.Register(c.Request.Context(), user, req.Password)
	if errors.Is(err, repository.DuplicateUserErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.InvalidCredentialsErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.auth.UserByID(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no file uploaded"})
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err = c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
		fail(c, err)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusOK, gin.H{
		"imageUrl": fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, name),
	})
}
