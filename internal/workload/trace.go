package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/internal/pcb"
)

// LoadTraceFile opens path and parses it per spec.md §6's trace format.
// Malformed lines are logged as warnings and skipped — a workload data
// error, not a usage error — rather than aborting the whole file.
func LoadTraceFile(path string) ([]*pcb.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("workload: opening trace file: %w", err)
	}
	defer f.Close()

	processes, err := ParseTrace(f)
	if err != nil {
		return nil, err
	}
	logrus.Infof("workload: parsed %d process(es) from trace file %s", len(processes), path)
	return processes, nil
}

// ParseTrace reads spec.md §6's line-oriented format from r: UTF-8,
// lines starting with '#' or empty lines skipped, data lines
// "pid,arrival,cpu_burst,io_burst,priority" with priority optional
// (defaults to 1). Grounded on original_source's
// WorkloadGenerator.generate_from_trace — same skip-and-warn shape,
// logrus.Warnf in place of the original's print().
func ParseTrace(r io.Reader) ([]*pcb.Process, error) {
	var processes []*pcb.Process
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := parseTraceLine(line)
		if err != nil {
			logrus.Warnf("workload: skipping invalid trace line %d: %v", lineNum, err)
			continue
		}
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("workload: reading trace file: %w", err)
	}
	return processes, nil
}

func parseTraceLine(line string) (*pcb.Process, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected at least 4 comma-separated fields, got %d", len(fields))
	}

	pid, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("pid: %w", err)
	}
	arrival, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("arrival: %w", err)
	}
	cpuBurst, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cpu_burst: %w", err)
	}
	ioBurst, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("io_burst: %w", err)
	}

	priority := 1
	if len(fields) > 4 && strings.TrimSpace(fields[4]) != "" {
		priority, err = strconv.Atoi(strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, fmt.Errorf("priority: %w", err)
		}
	}

	return pcb.New(pid, arrival, cpuBurst, ioBurst, priority)
}
