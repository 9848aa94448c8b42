package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	. "github.com/quadrated/hotlib"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "Modbuild"
	app.Usage = "game module builder"
	app.Description = "builds a module package into the platform shared library the runtime hot-reloads"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	app.Args = true
	app.Commands = []*cli.Command{
		{Name: "build",
			Action: build,
			Usage:  "compile a module package into the artifact",
			Flags:  buildFlags(),
			Args:   true,
		},
		{Name: "watch",
			Action: watch,
			Usage:  "rebuild whenever the module sources change",
			Flags: append(buildFlags(),
				&cli.DurationFlag{Name: "interval", Aliases: []string{"i"}, Value: 500 * time.Millisecond, Usage: "source poll interval"},
			),
			Args: true,
		},
		{Name: "assets",
			Action: assets,
			Usage:  "copy an asset directory next to the artifact",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "dir", Value: "target", Usage: "artifact directory"},
			},
			Args: true,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func buildFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "dir", Value: "target", Usage: "artifact directory"},
		&cli.StringFlag{Name: "name", Value: "game", Usage: "logical module name"},
	}
}

// artifactPath applies the loader's naming rule so builder and runtime agree
// on the artifact location.
func artifactPath(dir, name string) string {
	return filepath.Join(dir, PlatformFileNamer(runtime.GOOS)(name))
}

// build compiles the module package under the exclusive build lock the
// runtime's reload honors, so a half-written artifact is never staged.
func build(ctx *cli.Context) (err error) {
	pkg := ctx.Args().First()
	if pkg == "" {
		return fmt.Errorf("missing module package path")
	}
	if _, err = exec.LookPath("go"); err != nil {
		return fmt.Errorf("missing go sdk: %w", err)
	}
	d := ctx.Bool("debug")
	artifact := artifactPath(ctx.String("dir"), ctx.String("name"))
	if err = os.MkdirAll(ctx.String("dir"), 0o755); err != nil {
		return
	}
	lock := flock.New(LockPath(artifact))
	if err = lock.Lock(); err != nil {
		return
	}
	defer func() { _ = lock.Close() }()
	cmd := exec.Command("go", "build", "-buildmode=c-shared", "-o", artifact, pkg)
	if d {
		log.Printf("execute: %v", cmd.Args)
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return
	}
	log.Printf("built %s", artifact)
	return
}

// watch polls the module package sources and rebuilds on change, the external
// half of the hot-reload loop during development.
func watch(ctx *cli.Context) (err error) {
	pkg := ctx.Args().First()
	if pkg == "" {
		return fmt.Errorf("missing module package path")
	}
	interval := ctx.Duration("interval")
	var lastBuilt time.Time
	for {
		var newest time.Time
		if newest, err = newestSource(pkg); err != nil {
			return
		}
		if newest.After(lastBuilt) {
			if err = build(ctx); err != nil {
				// A broken build keeps the previous artifact in place, the
				// runtime never sees it. Report and keep watching.
				log.Printf("build failed: %s", err)
			}
			lastBuilt = newest
		}
		time.Sleep(interval)
	}
}

// newestSource is the most recent modification time of any go source below
// dir.
func newestSource(dir string) (newest time.Time, err error) {
	err = filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".go" {
			return nil
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
		return nil
	})
	return
}

func assets(ctx *cli.Context) (err error) {
	src := ctx.Args().First()
	if src == "" {
		return fmt.Errorf("missing asset directory")
	}
	dest := filepath.Join(ctx.String("dir"), filepath.Base(src))
	if ctx.Bool("debug") {
		log.Printf("copy assets from %s to %s", src, dest)
	}
	return CopyDir(src, dest, nil)
}
