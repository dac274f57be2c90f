package misc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile creates or truncates fileName and streams write into it. The file
// is closed before returning and any close error is reported.
func WriteFile(fileName string, write func(io.Writer) error) (err error) {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	// create/truncate file for writing
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %w", fileName, err)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("unable to close file %s - %w", fileName, closeErr)
		}
	}()

	buffered := bufio.NewWriter(file)
	err = write(buffered)
	if err != nil {
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	err = buffered.Flush()
	if err != nil {
		return fmt.Errorf("unable to write file %s - %w", fileName, err)
	}

	return nil
}
