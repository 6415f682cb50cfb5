package pets

import "context"

// Exists indica si (userID, petID) tiene un perfil guardado.
// Lo usan otros módulos vía interfaces chicas para evitar ciclos de imports.
func (s *Service) Exists(ctx context.Context, userID, petID string) (bool, error) {
	_, err := s.GetByPetID(ctx, userID, petID)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ImageOf devuelve el nombre de archivo local de la foto del pet ("" si no tiene).
func (s *Service) ImageOf(ctx context.Context, userID, petID string) (string, error) {
	p, err := s.GetByPetID(ctx, userID, petID)
	if err != nil {
		return "", err
	}
	return p.ImagePath, nil
}
