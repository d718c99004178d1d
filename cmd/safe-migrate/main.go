// Command safe-migrate applies a service schema, or any SQL file, to its PostgreSQL database.
//
//	safe-migrate -service perfiles
//	safe-migrate -file patch.sql -db safe_incidentes
//	safe-migrate -service registros -dry-run
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	commonconfig "safe-rescue/safe-common/config"
	"safe-rescue/safe-common/database"
	"safe-rescue/safe-common/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// services known to the tool, by short name
var services = []string{"perfiles", "registros", "comunicacion", "incidentes", "geolocalizacion"}

type target struct {
	Path     string
	Database string
}

// resolveTarget picks the SQL file and database. A service name maps to its embedded
// schema file under root and to its default database; -db always wins.
func resolveTarget(service, file, db, root string) (target, error) {
	switch {
	case service != "" && file != "":
		return target{}, fmt.Errorf("-service and -file are mutually exclusive")
	case service != "":
		if !lo.Contains(services, service) {
			return target{}, fmt.Errorf("unknown service %q (one of %v)", service, services)
		}
		t := target{
			Path:     filepath.Join(root, "safe-"+service, "internal", "repository", "schema.sql"),
			Database: "safe_" + service,
		}
		if db != "" {
			t.Database = db
		}
		return t, nil
	case file != "":
		if db == "" {
			return target{}, fmt.Errorf("-db is required with -file")
		}
		return target{Path: file, Database: db}, nil
	default:
		return target{}, fmt.Errorf("one of -service or -file is required")
	}
}

func main() {
	service := flag.String("service", "", "service whose schema is applied")
	file := flag.String("file", "", "SQL file to apply")
	dbName := flag.String("db", "", "target database (defaults to the service database)")
	root := flag.String("root", ".", "repository root used to locate service schemas")
	dryRun := flag.Bool("dry-run", false, "print the statements without executing them")
	flag.Parse()

	if err := commonconfig.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}
	var logCfg commonconfig.LogConfig
	logCfg.LoadFromEnv()
	log, err := logger.NewLogger(logCfg.Level, logCfg.Format, "safe-migrate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	t, err := resolveTarget(*service, *file, *dbName, *root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	script, err := os.ReadFile(t.Path)
	if err != nil {
		log.Fatal("Failed to read migration file", zap.String("path", t.Path), zap.Error(err))
	}

	stmts := database.SplitStatements(string(script))
	if *dryRun {
		for i, stmt := range stmts {
			fmt.Printf("-- statement %d/%d\n%s;\n\n", i+1, len(stmts), stmt)
		}
		return
	}

	var dbCfg commonconfig.DatabaseConfig
	dbCfg.LoadFromEnv("DB", t.Database)
	dbCfg.Database = t.Database
	db, err := database.NewPostgresDB(&dbCfg)
	if err != nil {
		log.Fatal("Failed to connect database", zap.String("database", t.Database), zap.Error(err))
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := database.ApplySchema(ctx, db, string(script))
	if err != nil {
		log.Fatal("Migration failed, rolled back", zap.String("path", t.Path), zap.Error(err))
	}
	log.Info("Migration applied",
		zap.String("path", t.Path),
		zap.String("database", t.Database),
		zap.Int("statements", n))
}
