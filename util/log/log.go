// Package log is the application logger. Development builds write to stderr with
// debug lines; release builds write to a rotated file and drop debug lines.
package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/Wallin/config"
)

// depth skips output and the exported wrapper so the caller's file is reported.
const depth = 3

const flags = log.Ldate | log.Ltime | log.Lshortfile

func output(s string) {
	log.Output(depth, s)
}

// Print logs like fmt.Print.
func Print(v ...interface{}) { output(fmt.Sprint(v...)) }

// Printf logs like fmt.Printf.
func Printf(format string, v ...interface{}) { output(fmt.Sprintf(format, v...)) }

// Println logs like fmt.Println.
func Println(v ...interface{}) { output(fmt.Sprintln(v...)) }

// Fatal logs and exits with status 1.
func Fatal(v ...interface{}) {
	output(fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	output(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln logs and exits with status 1.
func Fatalln(v ...interface{}) {
	output(fmt.Sprintln(v...))
	os.Exit(1)
}

// filePath returns where release builds write: the user cache dir on windows,
// a dot folder in the home dir elsewhere.
func filePath(goos string, cacheDir, homeDir func() (string, error)) (string, error) {
	base, sub := homeDir, config.LogSubDir
	if goos == "windows" {
		base, sub = cacheDir, config.LogWinSubDir
	}
	root, err := base()
	if err != nil {
		return "", fmt.Errorf("log directory: %w", err)
	}
	return filepath.Join(root, sub, strings.ToLower(config.AppName)+config.LogExt), nil
}
