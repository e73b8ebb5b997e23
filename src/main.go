// Package src contains the Main function of MelodyHub. It reads the configuration,
// wires the catalog, the audio store and the remote search together and runs the
// webserver until the process is told to stop.
//
// It is in package src because it is imported from the project's root folder.
package src

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/ironsmile/melodyhub/src/audio"
	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/config"
	"github.com/ironsmile/melodyhub/src/daemon"
	"github.com/ironsmile/melodyhub/src/deezer"
	"github.com/ironsmile/melodyhub/src/helpers"
	"github.com/ironsmile/melodyhub/src/version"
	"github.com/ironsmile/melodyhub/src/webserver"
)

// shutdownTimeout is how long requests in flight are given to finish once the
// server has been told to stop.
const shutdownTimeout = 5 * time.Second

// Main is the only thing run in the project's root main.go file.
// For all intent and purposes this is the main function.
func Main(templatesFS fs.FS) {
	var (
		configFile  string
		envFile     string
		logFile     string
		debug       bool
		showVersion bool
	)

	flag.StringVar(&configFile, "config", "", "Path to a JSON configuration file.")
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, "Path to a .env file.")
	flag.StringVar(&logFile, "log-file", "", "Write logs in this file instead of stderr.")
	flag.BoolVar(&debug, "D", false, "Debug mode. Logs the effective configuration.")
	flag.BoolVar(&showVersion, "v", false, "Show version and build information.")
	flag.Parse()

	if showVersion {
		version.Print(os.Stdout)
		os.Exit(0)
	}

	if err := run(templatesFS, configFile, envFile, logFile, debug); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(templatesFS fs.FS, configFile, envFile, logFile string, debug bool) error {
	osFs := afero.NewOsFs()

	cfg, err := config.Loader{
		FS:         osFs,
		ConfigPath: configFile,
		EnvFile:    envFile,
	}.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if logFile != "" {
		cfg.LogFile = logFile
	}

	if cfg.LogFile != "" {
		if err := helpers.SetLogsFile(osFs, cfg.LogFile); err != nil {
			return err
		}
	}

	if cfg.PidFile != "" {
		if err := helpers.SetUpPidFile(osFs, cfg.PidFile); err != nil {
			return err
		}
		defer helpers.RemovePidFile(osFs, cfg.PidFile)
	}

	if debug {
		log.Printf("%#v\n", cfg)
	}

	// A nil interface, not a nil *deezer.Client, disables the remote search.
	var finder deezer.Finder
	if !cfg.Deezer.Disabled {
		finder = deezer.NewClient(cfg.Deezer.UserAgent, cfg.Deezer.APIURL)
	} else {
		log.Println("Remote search is disabled. Covers will not be enriched.")
	}

	srv := webserver.NewServer(
		*cfg,
		templatesFS,
		catalog.NewFileStore(osFs, cfg.CatalogPath),
		audio.NewLocalStore(osFs, cfg.AudioRoot),
		finder,
	)
	if err := srv.Serve(); err != nil {
		return err
	}

	ctx, stop := daemon.StopContext(context.Background())
	defer stop()
	<-ctx.Done()

	log.Println("Stopping the webserver...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Printf("Stopping the webserver: %s\n", err)
	}
	srv.Wait()

	return nil
}
