package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/asreorder/internal/models"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a y/N question. Anything but y/yes is a no.
func confirm(prompt string) bool {
	answer, err := readLine(prompt + " (y/N): ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// promptParentRef asks for the parent record type and id, re-asking until
// both are usable.
func promptParentRef() (models.ParentRef, error) {
	for {
		recordType, err := readLine("Enter the type of parent record to update (archival_objects/resources): ")
		if err != nil {
			return models.ParentRef{}, err
		}
		recordType = strings.ToLower(recordType)
		if !models.ValidParentType(recordType) {
			fmt.Println("Invalid input. Please enter 'archival_objects' or 'resources'.")
			continue
		}

		for {
			raw, err := readLine(fmt.Sprintf("Enter the ID of the parent %s to reorder into: ", recordType))
			if err != nil {
				return models.ParentRef{}, err
			}
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				fmt.Println("Invalid input. Please enter a valid number.")
				continue
			}
			return models.ParentRef{RecordType: recordType, ID: id}, nil
		}
	}
}

// promptStrategy asks how to issue the position updates.
func promptStrategy() (models.Strategy, error) {
	fmt.Println("\nReorder method:")
	fmt.Println("  1. Individual moves (one API call per object, continues past failures)")
	fmt.Println("  2. Bulk move (one API call for all objects, all-or-nothing)")
	for {
		choice, err := readLine("Choose method (1/2): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1", string(models.StrategyIndividual):
			return models.StrategyIndividual, nil
		case "2", string(models.StrategyBulk):
			return models.StrategyBulk, nil
		}
		fmt.Println("Invalid input. Please enter '1' or '2'.")
	}
}
