package nlptour

import (
	"fmt"
	"strings"
)

// CombinedError collects independent failures, such as every missing model
// file of a run.
type CombinedError struct {
	Message string
	Errors  []error
}

func (c *CombinedError) append(err error) {
	c.Errors = append(c.Errors, err)
}

func (c *CombinedError) appendIfError(err error) {
	if err != nil {
		c.append(err)
	}
}

func (c *CombinedError) errorOrNil() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c
}

func (c CombinedError) Error() string {
	var result []string
	for _, err := range c.Errors {
		result = append(result, err.Error())
	}
	return fmt.Sprintf("%s: %s", c.Message, strings.Join(result, ", "))
}

func (c CombinedError) Unwrap() []error {
	return c.Errors
}
