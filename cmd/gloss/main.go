package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"gloss/internal/config"
	"gloss/internal/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print the version of the program")
	configFlag := flag.String("config", config.DefaultPath(), "Path to config file")
	flag.Parse()

	// Print the version if the flag is set
	if *versionFlag {
		fmt.Printf("gloss LSP server version %s\n", Version)
		return
	}

	// Give it some cores
	runtime.GOMAXPROCS(4)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logging
	logFile, err := os.OpenFile(
		cfg.LogFile,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	// Logger used by glsp
	commonlog.Configure(cfg.Verbosity, &cfg.LogFile)

	// Set up multi-writer for logging
	multiWriter := io.MultiWriter(os.Stderr, logFile)
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting gloss LSP server...")

	// Initialize the server
	srv, err := server.NewServer(cfg, Version)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := srv.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
