package server

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	cfgpkg "github.com/ferryhill/kanbord/internal/config"
	boarddao "github.com/ferryhill/kanbord/internal/dao/board"
	pgdao "github.com/ferryhill/kanbord/internal/dao/postgres"
	boardhttp "github.com/ferryhill/kanbord/internal/http/board"
	srv "github.com/ferryhill/kanbord/internal/server"
	"github.com/spf13/cobra"
)

var (
	flagDetach bool
	flagAddr   string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the local board server",
	RunE: func(cmd *cobra.Command, args []string) error {
		pidPath := srv.DefaultPIDPath()
		if flagDetach {
			exe, err := os.Executable()
			if err != nil {
				return err
			}
			// Spawn a detached child running in foreground mode
			childArgs := []string{"server", "start", "--no-detach"}
			if flagAddr != "" {
				childArgs = append(childArgs, "--addr", flagAddr)
			}
			child := exec.Command(exe, childArgs...)
			logPath := filepath.Join(filepath.Dir(pidPath), "server.log")
			_ = os.MkdirAll(filepath.Dir(pidPath), 0o755)
			lf, _ := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if lf != nil {
				defer lf.Close()
				child.Stdout = lf
				child.Stderr = lf
			}
			if runtime.GOOS != "windows" {
				child.SysProcAttr = srv.DetachAttr()
			}
			if err := child.Start(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "server started in background (pid=%d)\n", child.Process.Pid)
			return nil
		}

		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		addr := flagAddr
		if addr == "" {
			port := cfg.Server.Port
			if port == 0 {
				port = cfgpkg.DefaultServerPort
			}
			addr = fmt.Sprintf("127.0.0.1:%d", port)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := pgdao.OpenApp(ctx, cfg)
		cancel()
		if err != nil {
			return err
		}
		defer pool.Close()

		pg := boarddao.NewPgBoard(pool)
		h := &boardhttp.Handler{Mover: pg, Stats: pg, Boards: pg}
		fmt.Fprintf(os.Stderr, "listening on %s\n", addr)
		return srv.RunForeground(addr, pidPath, h.Routes())
	},
}

func init() {
	startCmd.Flags().BoolVar(&flagDetach, "detach", false, "Run in background")
	// Hidden internal flag to prevent loop when re-execing for detach
	startCmd.Flags().Bool("no-detach", false, "internal")
	_ = startCmd.Flags().MarkHidden("no-detach")
	startCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address override (defaults to config)")
}
