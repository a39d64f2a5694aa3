package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation before overwriting it. It returns true if the file
// doesn't exist, or the user answered yes.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and reads a y/n answer from stdin,
// defaulting to no on a bare ENTER.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		c := input[0]
		if c == 10 {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}
