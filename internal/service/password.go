package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher aplica bcrypt con un costo fijado por configuración. bcrypt
// genera un salt nuevo en cada llamada, por lo que dos hashes de la misma
// contraseña difieren, y la comparación es en tiempo constante.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produce el hash salteado de la contraseña. Solo falla ante un fallo
// interno catastrófico (p. ej. sin fuente de aleatoriedad).
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Check verifica la contraseña contra el hash almacenado.
func (h *PasswordHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
