package user

import (
	"fmt"
	"time"

	"mycare/models"
	"mycare/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a usuario by its numeric id.
func (s *DefaultUserService) GetUserByID(userID int64) (*models.Usuario, error) {
	usuario, err := s.Repo.GetByID(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch usuario", zap.Int64("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch usuario")
	}
	if usuario == nil {
		return nil, fmt.Errorf("usuario with id %d not found", userID)
	}
	return usuario, nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.Usuario, error) {
	usuarios, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to fetch usuarios", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch usuarios")
	}
	return usuarios, nil
}

// UpdateUser applies the non-nil fields of the request to the stored account.
func (s *DefaultUserService) UpdateUser(userID int64, upd models.ActualizarUsuarioRequest) (*models.Usuario, error) {
	usuario, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if upd.Correo != nil {
		usuario.Correo = *upd.Correo
	}
	if upd.Celular != nil {
		usuario.Celular = *upd.Celular
	}
	if upd.Nombres != nil {
		usuario.Nombres = *upd.Nombres
	}
	if upd.Apellidos != nil {
		usuario.Apellidos = *upd.Apellidos
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to update usuario")
		}
		usuario.PasswordHash = string(hashed)
	}
	usuario.FechaActualizacion = time.Now()

	if err := s.Repo.Update(usuario); err != nil {
		utils.GetLogger().Error("Failed to update usuario", zap.Int64("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update usuario")
	}
	return usuario, nil
}

func (s *DefaultUserService) DeleteUser(userID int64) error {
	if err := s.Repo.Delete(userID); err != nil {
		utils.GetLogger().Error("Failed to delete usuario", zap.Int64("id", userID), zap.Error(err))
		return fmt.Errorf("failed to delete usuario")
	}
	return nil
}

// GetInformacion returns the user's physical profile, or an error when the
// profile has not been captured yet.
func (s *DefaultUserService) GetInformacion(userID int64) (*models.UsuarioInformacion, error) {
	info, err := s.Repo.GetInformacion(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch usuario informacion", zap.Int64("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch informacion")
	}
	if info == nil {
		return nil, fmt.Errorf("informacion for usuario %d not found", userID)
	}
	return info, nil
}

// SaveInformacion validates and stores the physical profile used by the
// intake calculations.
func (s *DefaultUserService) SaveInformacion(userID int64, info models.UsuarioInformacion) (*models.UsuarioInformacion, error) {
	if info.AlturaCm <= 0 || info.PesoKg <= 0 {
		return nil, fmt.Errorf("altura and peso must be positive")
	}
	if info.Sexo != "M" && info.Sexo != "F" {
		return nil, fmt.Errorf("sexo must be M or F")
	}
	if _, err := time.Parse("2006-01-02", info.FechaNacimiento); err != nil {
		return nil, fmt.Errorf("fechaNacimiento must be YYYY-MM-DD")
	}

	info.UsuarioID = userID
	if err := s.Repo.UpsertInformacion(&info); err != nil {
		utils.GetLogger().Error("Failed to save usuario informacion", zap.Int64("id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to save informacion")
	}
	return &info, nil
}
