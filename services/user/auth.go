package user

import (
	"context"
	"fmt"
	"time"

	"mycare/database"
	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an issued session token remains valid.
const tokenDuration = 24 * time.Hour

// RegisterUser creates a new account, hashes the password, issues a token and
// establishes the session in the cache.
func (s *DefaultUserService) RegisterUser(req models.RegistrarUsuarioRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByUsername(req.Username)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing usuario", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q is already taken", req.Username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	id, err := database.NextID("usuarios")
	if err != nil {
		utils.GetLogger().Error("Failed to allocate usuario id", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	usuario := models.Usuario{
		ID:                 id,
		Username:           req.Username,
		PasswordHash:       string(hashed),
		Correo:             req.Correo,
		Celular:            req.Celular,
		Nombres:            req.Nombres,
		Apellidos:          req.Apellidos,
		Rol:                models.RolUsuario,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	if err := s.Repo.Create(&usuario); err != nil {
		utils.GetLogger().Error("Failed to create usuario", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueSession(&usuario)
}

// AuthenticateUser verifies the credentials and issues a fresh session token.
func (s *DefaultUserService) AuthenticateUser(cred models.CredencialesRequest) (*AuthResponse, error) {
	usuario, err := s.Repo.GetByUsername(cred.Username)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch usuario for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usuario == nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(cred.Password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}
	return s.issueSession(usuario)
}

// SignOut drops the cached session so the token stops resolving from cache.
func (s *DefaultUserService) SignOut(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.Sessions.Clear(ctx, token)
}

func (s *DefaultUserService) issueSession(usuario *models.Usuario) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usuario.ID, usuario.Rol, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := s.Sessions.Establish(ctx, token); err != nil {
		utils.GetLogger().Error("Failed to establish session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:       usuario.ID,
		Token:    token,
		Username: usuario.Username,
		Correo:   usuario.Correo,
		Nombres:  usuario.Nombres,
		Rol:      usuario.Rol,
	}, nil
}
