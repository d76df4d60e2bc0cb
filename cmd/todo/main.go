package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"todoList/internal/app"
	"todoList/internal/config"
)

func main() {
	configPathFlag := flag.String("config", "config.yml", "путь к файлу конфигурации")
	filePathFlag := flag.String("file", "", "путь к файлу задач")
	serveFlag := flag.Bool("serve", false, "поднять http-сервер рядом с меню")
	portFlag := flag.String("port", "", "порт http-сервера")
	flag.Parse()

	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *filePathFlag != "" {
		cfg.Storage.Path = *filePathFlag
	}
	if *serveFlag {
		cfg.Server.Enabled = true
	}
	if *portFlag != "" {
		cfg.Server.Port = *portFlag
	}

	if err := app.New(cfg).Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
