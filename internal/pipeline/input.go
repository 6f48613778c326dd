package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrInputCreated indica que o arquivo não existia e foi criado com exemplos
	ErrInputCreated = errors.New("arquivo de entrada não encontrado, exemplo criado")
	// ErrInputEmpty indica um arquivo sem nenhuma linha preenchida
	ErrInputEmpty = errors.New("arquivo de entrada vazio")
)

// SampleLines são gravadas quando o arquivo de entrada não existe
var SampleLines = []string{
	"https://www.amazon.com.br/s?k=escorredor+de+pratos",
	"B07XQXZXJC",
	"smartphone samsung",
}

// ReadInput lê as linhas não vazias do arquivo, já sem espaços nas pontas.
// Comentários continuam na lista; quem processa decide pular.
func ReadInput(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeSample(path); err != nil {
			return nil, err
		}
		return nil, ErrInputCreated
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	if len(lines) == 0 {
		return nil, ErrInputEmpty
	}
	return lines, nil
}

func writeSample(path string) error {
	content := strings.Join(SampleLines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("erro ao criar %s: %w", path, err)
	}
	return nil
}
