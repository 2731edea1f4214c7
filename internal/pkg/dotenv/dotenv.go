package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load подмешивает переменные из file в окружение. Уже заданные переменные не перезаписываются.
// Отсутствие файла не ошибка: loaded == false.
func Load(file string) (loaded bool, err error) {
	if _, err = os.Stat(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", file, err)
	}

	if err = godotenv.Load(file); err != nil {
		return false, fmt.Errorf("load %s: %w", file, err)
	}
	return true, nil
}

// OverridePort подменяет PORT значением флага -port.
func OverridePort(port string) error {
	if port == "" {
		return nil
	}
	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
