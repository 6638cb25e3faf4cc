// Package password encapsula el hash de contraseñas (bcrypt) para que el
// dominio no dependa del algoritmo concreto.
package password

import "golang.org/x/crypto/bcrypt"

// Cost factor de trabajo fijo del sistema (bcrypt.DefaultCost = 10).
const Cost = bcrypt.DefaultCost

// Hash genera un digest salteado de una vía a partir del texto plano.
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	return string(bytes), err
}

// Verify informa si el texto plano corresponde al hash almacenado.
// Un hash malformado o vacío devuelve false, nunca panic ni error:
// los llamadores no deben distinguir hash corrupto de contraseña incorrecta.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
