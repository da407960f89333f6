package helpers

import (
	"os"
	"os/user"
	"strconv"
)

func IsRunningAsSudo() bool {
	_, hasSudoUser := os.LookupEnv("SUDO_USER")

	euid := os.Geteuid()
	ruid := os.Getuid()

	return hasSudoUser || (euid == 0 && euid != ruid)
}

func GetRealHome() string {
	u, err := GetRealUser()

	if err != nil || u.HomeDir == "" {
		return os.Getenv("HOME")
	}

	return u.HomeDir
}

func GetRealUser() (*user.User, error) {
	if sudoUser, exists := os.LookupEnv("SUDO_USER"); exists {
		return user.Lookup(sudoUser)
	}

	return user.Current()
}

func Chown(path string, uid, gid string) error {
	UID, err := strconv.Atoi(uid)

	if err != nil {
		return err
	}

	GID, err := strconv.Atoi(gid)

	if err != nil {
		return err
	}

	return os.Chown(path, UID, GID)
}

// ChownToRealUser hands files created by the privileged backend back to the invoking user.
// It does nothing unless the process runs under sudo.
func ChownToRealUser(path string) error {
	if !IsRunningAsSudo() {
		return nil
	}

	u, err := GetRealUser()

	if err != nil {
		return err
	}

	return Chown(path, u.Uid, u.Gid)
}
