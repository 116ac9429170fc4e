package backups

import (
	"fmt"

	"github.com/mhollis/serene/internal/backup"
	"github.com/mhollis/serene/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}
