package aliexpress

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-affiliate-bot/internal/domain/ports/adapter"
	"telegram-affiliate-bot/internal/infra/metrics"
)

const (
	methodLinkGenerate  = "aliexpress.affiliate.link.generate"
	methodProductDetail = "aliexpress.affiliate.productdetail.get"
)

var _ adapter.AffiliateAPI = (*Client)(nil)

// Client talks to the AliExpress Affiliate open API (TOP protocol): signed
// form-encoded requests against a single sync endpoint.
type Client struct {
	appKey     string
	appSecret  string
	trackingID string
	baseURL    string
	httpClient *http.Client
	log        *zerolog.Logger
	now        func() time.Time
}

func NewClient(appKey, appSecret, trackingID, baseURL string, timeout time.Duration, log *zerolog.Logger) *Client {
	return &Client{
		appKey:     appKey,
		appSecret:  appSecret,
		trackingID: trackingID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		now:        time.Now,
	}
}

type promotionLink struct {
	PromotionLink string `json:"promotion_link"`
	SourceValue   string `json:"source_value"`
}

type linkGenerateResponse struct {
	Response struct {
		RespResult struct {
			RespCode int `json:"resp_code"`
			Result   struct {
				PromotionLinks struct {
					PromotionLink []promotionLink `json:"promotion_link"`
				} `json:"promotion_links"`
				TotalResultCount int `json:"total_result_count"`
			} `json:"result"`
		} `json:"resp_result"`
	} `json:"aliexpress_affiliate_link_generate_response"`
}

type productRecord struct {
	TargetSalePrice     string `json:"target_sale_price"`
	ProductTitle        string `json:"product_title"`
	ProductMainImageURL string `json:"product_main_image_url"`
}

type productDetailResponse struct {
	Response struct {
		RespResult struct {
			RespCode int `json:"resp_code"`
			Result   struct {
				Products struct {
					Product []productRecord `json:"product"`
				} `json:"products"`
				CurrentRecordCount int `json:"current_record_count"`
			} `json:"result"`
		} `json:"resp_result"`
	} `json:"aliexpress_affiliate_productdetail_get_response"`
}

type errorResponse struct {
	ErrorResponse *struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"error_response"`
}

// GenerateLinks converts a tracking URL into promotional links.
func (c *Client) GenerateLinks(ctx context.Context, trackingURL string) ([]string, error) {
	body, err := c.call(ctx, methodLinkGenerate, map[string]string{
		"promotion_link_type": "0",
		"source_values":       trackingURL,
		"tracking_id":         c.trackingID,
	})
	if err != nil {
		return nil, err
	}

	var parsed linkGenerateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode link.generate response: %w", err)
	}
	records := parsed.Response.RespResult.Result.PromotionLinks.PromotionLink
	links := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.PromotionLink != "" {
			links = append(links, rec.PromotionLink)
		}
	}
	return links, nil
}

// ProductDetails fetches detail records for the given product ids.
func (c *Client) ProductDetails(ctx context.Context, productIDs []string, fields []string) ([]adapter.RawProductDetail, error) {
	body, err := c.call(ctx, methodProductDetail, map[string]string{
		"product_ids":     strings.Join(productIDs, ","),
		"fields":          strings.Join(fields, ","),
		"target_currency": "USD",
		"target_language": "AR",
		"tracking_id":     c.trackingID,
	})
	if err != nil {
		return nil, err
	}

	var parsed productDetailResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode productdetail.get response: %w", err)
	}
	records := parsed.Response.RespResult.Result.Products.Product
	out := make([]adapter.RawProductDetail, 0, len(records))
	for _, rec := range records {
		out = append(out, adapter.RawProductDetail{
			TargetSalePrice: rec.TargetSalePrice,
			ProductTitle:    rec.ProductTitle,
			MainImageURL:    rec.ProductMainImageURL,
		})
	}
	return out, nil
}

func (c *Client) call(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	form := url.Values{}
	form.Set("method", method)
	form.Set("app_key", c.appKey)
	form.Set("sign_method", "md5")
	form.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	form.Set("format", "json")
	form.Set("v", "2.0")
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("sign", c.sign(form))

	start := time.Now()
	body, err := c.post(ctx, form)
	metrics.ObserveExternalCall("aliexpress", float64(time.Since(start).Milliseconds()), err == nil)
	if err != nil {
		return nil, err
	}

	var apiErr errorResponse
	if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.ErrorResponse != nil {
		return nil, fmt.Errorf("aliexpress api error: code %d, msg %s", apiErr.ErrorResponse.Code, apiErr.ErrorResponse.Msg)
	}
	return body, nil
}

func (c *Client) post(ctx context.Context, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// sign computes the TOP md5 signature: secret + sorted key/value pairs +
// secret, md5-hashed, upper-case hex.
func (c *Client) sign(form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(c.appSecret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(form.Get(k))
	}
	b.WriteString(c.appSecret)

	return strings.ToUpper(fmt.Sprintf("%x", md5.Sum([]byte(b.String()))))
}
