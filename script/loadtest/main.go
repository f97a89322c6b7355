package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// scenario is one kind of request the load test sends
type scenario struct {
	Name   string
	Insert bool // adds exactly one receipt on success
	Build  func(baseURL string, userID int) (*http.Request, error)
}

type result struct {
	Scenario     string
	Insert       bool
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

type stats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	inserted      int
	responseTimes []time.Duration
	scenarios     map[string]int
	errors        map[string]int
}

func (s *stats) add(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios[r.Scenario]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	if r.Err != nil {
		s.errors[r.Err.Error()]++
		return
	}
	s.succeeded++
	if r.Insert {
		s.inserted++
	}
}

func (s *stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.responseTimes)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated user IDs used for uploads")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	flag.Parse()

	userIDs := parseUserIDs(*userIDsStr)
	scenarios := []scenario{
		{Name: "list", Build: listRequest},
		{Name: "test-insert", Insert: true, Build: testInsertRequest},
		{Name: "upload", Insert: true, Build: uploadRequest},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before, err := receiptCount(client, *baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read receipt count: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing %s with %d workers, %d requests, users %v\n",
		*baseURL, *concurrency, *totalRequests, userIDs)

	st := &stats{
		total:     *totalRequests,
		scenarios: make(map[string]int),
		errors:    make(map[string]int),
	}

	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			fmt.Printf("Progress: %d/%d\n", st.completed(), st.total)
		}
	}()

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				sc := scenarios[rand.Intn(len(scenarios))]
				st.add(send(client, sc, *baseURL, userIDs[rand.Intn(len(userIDs))]))
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	after, err := receiptCount(client, *baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read receipt count: %v\n", err)
		os.Exit(1)
	}

	printResults(st, elapsed)

	fmt.Printf("\nReceipt count: %d -> %d, successful inserts: %d\n", before, after, st.inserted)
	if after-before != st.inserted {
		fmt.Println("MISMATCH: the count did not grow by the number of successful inserts")
		os.Exit(1)
	}
	fmt.Println("OK: every successful insert is visible in the list")
}

func parseUserIDs(raw string) []int {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []int{1}
	}
	return ids
}

func listRequest(baseURL string, _ int) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+"/receipts", nil)
}

func testInsertRequest(baseURL string, _ int) (*http.Request, error) {
	return http.NewRequest(http.MethodPost, baseURL+"/receipts/test", nil)
}

func uploadRequest(baseURL string, userID int) (*http.Request, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("user_id", strconv.Itoa(userID)); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", "loadtest.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(bytes.Repeat([]byte{0xFF}, 2048)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/receipts/upload", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

func send(client *http.Client, sc scenario, baseURL string, userID int) result {
	r := result{Scenario: sc.Name, Insert: sc.Insert}

	req, err := sc.Build(baseURL, userID)
	if err != nil {
		r.Err = err
		return r
	}

	start := time.Now()
	resp, err := client.Do(req)
	r.ResponseTime = time.Since(start)
	if err != nil {
		r.Err = err
		return r
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	r.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.Err = fmt.Errorf("%s: HTTP status code %d", sc.Name, resp.StatusCode)
	}
	return r
}

func receiptCount(client *http.Client, baseURL string) (int, error) {
	resp, err := client.Get(baseURL + "/receipts")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	return body.Count, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(st *stats, elapsed time.Duration) {
	st.mu.Lock()
	defer st.mu.Unlock()

	times := append([]time.Duration(nil), st.responseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = sum / time.Duration(len(times))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", st.total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", st.succeeded, float64(st.succeeded)/float64(st.total)*100)
	fmt.Printf("Failed Requests:     %d\n", st.total-st.succeeded)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(st.succeeded)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	if len(times) > 0 {
		fmt.Printf("Min:     %v\n", times[0])
		fmt.Printf("Max:     %v\n", times[len(times)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(times, 50))
	fmt.Printf("P95:     %v\n", percentile(times, 95))
	fmt.Printf("P99:     %v\n", percentile(times, 99))

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range st.scenarios {
		fmt.Printf("%-12s: %d requests\n", name, count)
	}

	if len(st.errors) > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range st.errors {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
