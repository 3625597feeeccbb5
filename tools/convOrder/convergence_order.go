package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a grid convergence study: title,numPoints,L1")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s\n", cs.title)
		fmt.Printf("%10s %14s %8s\n", "numPoints", "L1", "order")
		orders := cs.Orders()
		for i := range cs.numPTS {
			if i == 0 {
				fmt.Printf("%10d %14.7e %8s\n", cs.numPTS[i], cs.l1[i], "-")
				continue
			}
			fmt.Printf("%10d %14.7e %8.4f\n", cs.numPTS[i], cs.l1[i], orders[i-1])
		}
	}
}

type ConvergenceStudy struct {
	title  string
	numPTS []int
	l1     []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, l1 float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.l1 = append(cs.l1, l1)
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.numPTS) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numPTS[i] < cs.numPTS[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.numPTS[i], cs.numPTS[j] = cs.numPTS[j], cs.numPTS[i]
	cs.l1[i], cs.l1[j] = cs.l1[j], cs.l1[i]
}

// Orders returns the observed order log(e1/e2)/log(n2/n1) between each pair of
// successive refinements
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	sort.Sort(cs)
	for i := 1; i < len(cs.numPTS); i++ {
		n1, n2 := float64(cs.numPTS[i-1]), float64(cs.numPTS[i])
		orders = append(orders, math.Log(cs.l1[i-1]/cs.l1[i])/math.Log(n2/n1))
	}
	return
}

func readCSV(rd io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
		npts    int
		l1      float64
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 3 {
			err = fmt.Errorf("line %d: need title,numPoints,L1, have %v", i+1, rec)
			return
		}
		title := strings.TrimSpace(rec[0])
		if npts, err = strconv.Atoi(strings.TrimSpace(rec[1])); err != nil {
			return
		}
		if l1, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err != nil {
			return
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		cs.Add(npts, l1)
	}
	return
}
