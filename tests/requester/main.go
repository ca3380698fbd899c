package main

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

const baseURL = "http://localhost:3000"

var skus = []string{
	"SKU1001", "SKU1002", "SKU1003", "SKU1004", "SKU1005",
	"SKU1006", "SKU1007", "SKU1008", "SKU1009",
}

var orderIDPattern = regexp.MustCompile(`^/order/(.+)$`)

var client = &http.Client{
	Timeout: 5 * time.Second,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	switch rand.Intn(10) {
	case 0, 1, 2:
		get("/")
	case 3, 4:
		get("/cart")
	case 5, 6, 7:
		addToCart()
	case 8:
		updateCart()
	default:
		checkout()
	}
}

func randomSKU() string {
	if rand.Intn(10) == 0 {
		return "SKU9999"
	}
	return skus[rand.Intn(len(skus))]
}

func get(path string) {
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Println("GET", path, "failed:", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	fmt.Println("GET", path, "->", resp.Status)
}

func postForm(path string, form url.Values) *http.Response {
	resp, err := client.Post(
		baseURL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		fmt.Println("POST", path, "failed:", err)
		return nil
	}
	fmt.Println("POST", path, "->", resp.Status)
	return resp
}

func addToCart() {
	resp := postForm("/cart/add", url.Values{
		"sku": {randomSKU()},
		"qty": {fmt.Sprint(rand.Intn(12) + 1)},
	})
	if resp != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func updateCart() {
	resp := postForm("/cart/update", url.Values{
		"sku": {randomSKU()},
		"qty": {fmt.Sprint(rand.Intn(6))},
	})
	if resp != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

// checkout follows the confirmation redirect by hand so the order read
// path gets exercised too.
func checkout() {
	resp := postForm("/checkout", url.Values{})
	if resp == nil {
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	location := resp.Header.Get("Location")
	if m := orderIDPattern.FindStringSubmatch(location); m != nil {
		get("/order/" + m[1])
	}
}
