package security

import "golang.org/x/crypto/bcrypt"

// Encrypt 对明文口令做散列，存库用
func Encrypt(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ValidatePassword 校验明文口令与存储的散列是否匹配
func ValidatePassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
