package phones

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a set of phone labels.
type Set map[string]struct{}

func newSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

func union(sets ...Set) Set {
	s := make(Set)
	for _, set := range sets {
		for l := range set {
			s[l] = struct{}{}
		}
	}
	return s
}

// Contains checks membership of the given label in the set.
func (s Set) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Phone categories for the TIMIT-style label inventory.
var (
	Stops = newSet("p", "t", "k",
		"b", "d", "g")
	Closures = newSet("pcl", "tcl", "kcl",
		"bcl", "dcl", "gcl")
	Fricatives = newSet("ch", "th", "f", "s", "sh",
		"jh", "dh", "v", "z", "zh",
		"hh")
	Vowels = newSet("aa", "ae", "ah", "ao", "aw", "ax", "ax-h", "axr", "ay",
		"eh", "el", "em", "en", "eng", "er", "ey", "ih", "ix",
		"iy", "ow", "oy", "uh", "uw", "ux")
	Glides  = newSet("w", "y")
	Liquids = newSet("l", "r")
	Nasals  = newSet("m", "n", "ng", "nx")
	Other   = newSet("dx", "hv", "q")
)

var (
	// Vocalic covers the sonorant phones.
	Vocalic = union(Vowels, Glides, Liquids, Nasals)
	// Speech covers everything that is not silence.
	Speech = union(Stops, Closures, Fricatives, Vowels, Glides, Liquids, Nasals, Other)
)

// Task identifies one of the binary probe tasks.
type Task string

const (
	SpeechActivity Task = "speech-activity"
	Vowel          Task = "vowel"
	Sonorant       Task = "sonorant"
	Fricative      Task = "fricative"
)

var taskTargets = map[Task]Set{
	SpeechActivity: Speech,
	Vowel:          Vowels,
	Sonorant:       Vocalic,
	Fricative:      Fricatives,
}

// Tasks returns the known tasks in a stable order.
func Tasks() []Task {
	tasks := make([]Task, 0, len(taskTargets))
	for t := range taskTargets {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i] < tasks[j]
	})
	return tasks
}

// ParseTask resolves the given name to a known task.
func ParseTask(name string) (Task, error) {
	t := Task(name)
	if _, ok := taskTargets[t]; !ok {
		return "", fmt.Errorf("unrecognized task %q, valid tasks: %s", name, taskNames())
	}
	return t, nil
}

// Targets returns the phone labels counted as positive for the task.
func (t Task) Targets() Set {
	return taskTargets[t]
}

func taskNames() string {
	tasks := Tasks()
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
