// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"entgraph.io/entgraph/graphdb"
	"entgraph.io/entgraph/pkg/auth/jwtauth"
	"entgraph.io/entgraph/pkg/process"
	"entgraph.io/entgraph/pkg/server"
)

// Config is the server process configuration. Every field is required at
// startup; missing values are fatal before the listener opens.
type Config struct {
	Database     string
	Address      string
	JWTKeyPath   string
	JWTIssuer    string
	ZookieSecret string
	MaxConns     int
}

// Verify checks that all required settings are present.
func (config *Config) Verify() error {
	switch {
	case config.Database == "":
		return errInvalidConfig.New("database URL missing")
	case config.Address == "":
		return errInvalidConfig.New("listen address missing")
	case config.JWTKeyPath == "":
		return errInvalidConfig.New("JWT verification key path missing")
	case config.JWTIssuer == "":
		return errInvalidConfig.New("JWT issuer missing")
	case config.ZookieSecret == "":
		return errInvalidConfig.New("zookie secret missing")
	}
	return nil
}

var (
	rootCmd = &cobra.Command{
		Use:   "entgraph",
		Short: "Entgraph typed graph database",
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the graph server",
		RunE:  cmdRun,
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE:  cmdMigrate,
	}
	setupCmd = &cobra.Command{
		Use:   "setup",
		Short: "Write a commented config file",
		RunE:  cmdSetup,
	}
	setupOutput string
)

func init() {
	for _, cmd := range []*cobra.Command{runCmd, migrateCmd} {
		cmd.Flags().String("database", "", "database connection string (postgres:// or sqlite3://)")
	}
	runCmd.Flags().String("address", ":7777", "address to listen on")
	runCmd.Flags().String("jwt.key-path", "", "path to the PEM encoded RSA public key for JWT verification")
	runCmd.Flags().String("jwt.issuer", "", "expected JWT issuer")
	runCmd.Flags().String("zookie.secret", "", "HMAC secret for zookie signing")
	runCmd.Flags().Int("db.max-conns", 25, "maximum backend connections")
	setupCmd.Flags().StringVarP(&setupOutput, "output", "o", "entgraph.yaml", "where to write the config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(objectCmd)
	rootCmd.AddCommand(edgeCmd)
}

func runConfig() Config {
	return Config{
		Database:     viper.GetString("database"),
		Address:      viper.GetString("address"),
		JWTKeyPath:   viper.GetString("jwt.key-path"),
		JWTIssuer:    viper.GetString("jwt.issuer"),
		ZookieSecret: viper.GetString("zookie.secret"),
		MaxConns:     viper.GetInt("db.max-conns"),
	}
}

func cmdRun(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := process.Ctx(cmd)
	defer cancel()

	log, err := process.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer zap.ReplaceGlobals(log)()
	defer zap.RedirectStdLog(log)()

	config := runConfig()
	if err := config.Verify(); err != nil {
		return err
	}

	db, err := graphdb.Open(ctx, log.Named("graphdb"), config.Database, graphdb.Config{
		MaxConns:     config.MaxConns,
		ZookieSecret: []byte(config.ZookieSecret),
	})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.MigrateToLatest(ctx); err != nil {
		return err
	}

	verifier, err := jwtauth.NewVerifierFromFile(config.JWTKeyPath, config.JWTIssuer)
	if err != nil {
		return err
	}

	srv, err := server.New(log.Named("server"), db, verifier, server.Config{Address: config.Address})
	if err != nil {
		return err
	}
	defer func() { _ = srv.Close() }()

	log.Info("starting", zap.String("database", config.Database), zap.String("address", config.Address))
	return srv.Run(ctx)
}

func cmdMigrate(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := process.Ctx(cmd)
	defer cancel()

	log, err := process.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database := viper.GetString("database")
	if database == "" {
		return errInvalidConfig.New("database URL missing")
	}

	// a throwaway secret is fine for migrations, no zookies are issued.
	db, err := graphdb.Open(ctx, log.Named("graphdb"), database, graphdb.Config{
		ZookieSecret: []byte("migrate"),
	})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return db.MigrateToLatest(ctx)
}

func cmdSetup(cmd *cobra.Command, args []string) (err error) {
	if _, err := os.Stat(setupOutput); err == nil {
		return errInvalidConfig.New("%q already exists, not overwriting", setupOutput)
	}
	return os.WriteFile(setupOutput, []byte(defaultConfigFile), 0o644)
}

// defaultConfigFile documents every setting the server reads. Values can
// also come from flags or ENTGRAPH_* environment variables.
const defaultConfigFile = `# entgraph server configuration.
#
# run the server with:
#   entgraph run -config ` + "`" + `pwd` + "`" + `/entgraph.yaml

# database connection string (postgres:// or sqlite3://)
database: "sqlite3://entgraph.db"

# address to listen on
address: ":7777"

# path to the PEM encoded RSA public key for JWT verification
jwt.key-path: ""

# expected JWT issuer
jwt.issuer: ""

# HMAC secret for zookie signing. all servers sharing a database must
# agree on this value or clients cannot carry zookies between them.
zookie.secret: ""

# maximum backend connections. ignored for sqlite which is always
# limited to a single connection.
db.max-conns: 25
`

func main() {
	process.Execute(rootCmd)
}
