package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/evgenyd/docs-metadata-enhancer/internal/common"
)

// Client talks to the Wikidata action API and SPARQL endpoint. All requests
// carry the configured User-Agent per the Wikimedia API etiquette.
type Client struct {
	cfg  common.WikidataConfig
	http *http.Client
	log  *slog.Logger

	labelMu    sync.Mutex
	labelCache map[string]string // QID -> preferred label
}

func NewClient(cfg common.WikidataConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		http:       &http.Client{},
		log:        logger,
		labelCache: make(map[string]string),
	}
}

// Search runs wbsearchentities for a free-text name in one language and
// returns ranked candidates.
func (c *Client) Search(ctx context.Context, name, lang string) ([]SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.SearchTimeout)
	defer cancel()

	q := url.Values{
		"action":   {"wbsearchentities"},
		"search":   {name},
		"language": {lang},
		"uselang":  {lang},
		"type":     {"item"},
		"limit":    {"10"},
		"format":   {"json"},
	}
	var body struct {
		Search []struct {
			ID          string `json:"id"`
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"search"`
	}
	if err := c.getJSON(ctx, c.cfg.APIURL+"?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("search %q (%s): %w", name, lang, err)
	}

	out := make([]SearchResult, 0, len(body.Search))
	for _, s := range body.Search {
		out = append(out, SearchResult{ID: s.ID, Label: s.Label, Description: s.Description})
	}
	c.log.Debug("wikidata.search", "name", name, "lang", lang, "hits", len(out))
	return out, nil
}

// InstanceOf returns the QIDs an item declares as its P31 classes.
func (c *Client) InstanceOf(ctx context.Context, qid string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.VerifyTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT ?type WHERE { wd:%s wdt:P31 ?type }", qid)
	q := url.Values{"query": {query}, "format": {"json"}}

	var body struct {
		Results struct {
			Bindings []struct {
				Type struct {
					Value string `json:"value"`
				} `json:"type"`
			} `json:"bindings"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, c.cfg.SPARQLURL+"?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("instance-of %s: %w", qid, err)
	}

	classes := make([]string, 0, len(body.Results.Bindings))
	for _, b := range body.Results.Bindings {
		// values come back as entity URIs
		if i := strings.LastIndexByte(b.Type.Value, '/'); i >= 0 {
			classes = append(classes, b.Type.Value[i+1:])
		}
	}
	return classes, nil
}

// FetchEntity retrieves labels, descriptions and the auxiliary claims of one
// item, resolving claim values to labels where they reference other items.
func (c *Client) FetchEntity(ctx context.Context, qid string) (*EntityData, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.VerifyTimeout)
	defer cancel()

	q := url.Values{
		"action":    {"wbgetentities"},
		"ids":       {qid},
		"props":     {"labels|descriptions|claims"},
		"languages": {"ru|en"},
		"format":    {"json"},
	}
	var body struct {
		Entities map[string]struct {
			Labels       map[string]struct{ Value string } `json:"labels"`
			Descriptions map[string]struct{ Value string } `json:"descriptions"`
			Claims       map[string][]claim                `json:"claims"`
		} `json:"entities"`
	}
	if err := c.getJSON(ctx, c.cfg.APIURL+"?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("fetch entity %s: %w", qid, err)
	}
	ent, ok := body.Entities[qid]
	if !ok {
		return nil, fmt.Errorf("entity %s: %w", qid, common.ErrNotFound)
	}

	data := &EntityData{
		QID:           qid,
		LabelRU:       ent.Labels["ru"].Value,
		LabelEN:       ent.Labels["en"].Value,
		DescriptionRU: ent.Descriptions["ru"].Value,
		DescriptionEN: ent.Descriptions["en"].Value,
		Properties:    make(map[string]Property),
	}

	// first pass: collect the item ids referenced by claim values
	var refs []string
	for _, pid := range claimProperties {
		for _, cl := range ent.Claims[pid] {
			if id := cl.itemID(); id != "" {
				refs = append(refs, id)
			}
		}
	}
	labels, err := c.resolveLabels(ctx, refs)
	if err != nil {
		c.log.Warn("wikidata.fetch_entity.label_resolution_failed", "qid", qid, "error", err)
		labels = map[string]string{}
	}

	for _, pid := range claimProperties {
		claims := ent.Claims[pid]
		if len(claims) == 0 {
			continue
		}
		prop := Property{Label: propertyLabels[pid]}
		for _, cl := range claims {
			if v := cl.render(labels); v != "" {
				prop.Values = append(prop.Values, v)
			}
		}
		if len(prop.Values) > 0 {
			data.Properties[pid] = prop
		}
	}
	return data, nil
}

// SelfTest checks connectivity with one cheap search, so a batch can degrade
// to cache-only mode when the API is unreachable.
func (c *Client) SelfTest(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.SelfTestTimeout)
	defer cancel()

	q := url.Values{
		"action":   {"wbsearchentities"},
		"search":   {"Earth"},
		"language": {"en"},
		"type":     {"item"},
		"limit":    {"1"},
		"format":   {"json"},
	}
	var body struct {
		Search []json.RawMessage `json:"search"`
	}
	if err := c.getJSON(ctx, c.cfg.APIURL+"?"+q.Encode(), &body); err != nil {
		return fmt.Errorf("self-test: %w", err)
	}
	if len(body.Search) == 0 {
		return fmt.Errorf("self-test: empty search response")
	}
	return nil
}

// propertyLabels gives stable English labels for the claim properties we
// persist, avoiding an extra lookup per property.
var propertyLabels = map[string]string{
	"P31":  "instance of",
	"P279": "subclass of",
	"P570": "date of death",
	"P19":  "place of birth",
	"P569": "date of birth",
	"P106": "occupation",
	"P131": "located in",
	"P17":  "country",
}

type claim struct {
	MainSnak struct {
		DataValue struct {
			Type  string          `json:"type"`
			Value json.RawMessage `json:"value"`
		} `json:"datavalue"`
	} `json:"mainsnak"`
}

func (cl claim) itemID() string {
	if cl.MainSnak.DataValue.Type != "wikibase-entityid" {
		return ""
	}
	var v struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(cl.MainSnak.DataValue.Value, &v); err != nil {
		return ""
	}
	return v.ID
}

// render turns a claim value into a display string, preferring resolved
// labels for item references.
func (cl claim) render(labels map[string]string) string {
	switch cl.MainSnak.DataValue.Type {
	case "wikibase-entityid":
		id := cl.itemID()
		if label, ok := labels[id]; ok && label != "" {
			return label
		}
		return id
	case "time":
		var v struct {
			Time string `json:"time"`
		}
		if err := json.Unmarshal(cl.MainSnak.DataValue.Value, &v); err == nil {
			return strings.TrimPrefix(v.Time, "+")
		}
	case "string":
		var s string
		if err := json.Unmarshal(cl.MainSnak.DataValue.Value, &s); err == nil {
			return s
		}
	}
	return ""
}

// resolveLabels fetches preferred labels for item ids, ru over en, through
// the process-local label cache.
func (c *Client) resolveLabels(ctx context.Context, qids []string) (map[string]string, error) {
	out := make(map[string]string, len(qids))
	var missing []string

	c.labelMu.Lock()
	for _, id := range qids {
		if label, ok := c.labelCache[id]; ok {
			out[id] = label
		} else {
			missing = append(missing, id)
		}
	}
	c.labelMu.Unlock()

	if len(missing) == 0 {
		return out, nil
	}
	sort.Strings(missing)
	missing = dedupeSorted(missing)

	q := url.Values{
		"action":    {"wbgetentities"},
		"ids":       {strings.Join(missing, "|")},
		"props":     {"labels"},
		"languages": {"ru|en"},
		"format":    {"json"},
	}
	var body struct {
		Entities map[string]struct {
			Labels map[string]struct{ Value string } `json:"labels"`
		} `json:"entities"`
	}
	if err := c.getJSON(ctx, c.cfg.APIURL+"?"+q.Encode(), &body); err != nil {
		return out, err
	}

	c.labelMu.Lock()
	for id, ent := range body.Entities {
		label := ent.Labels["ru"].Value
		if label == "" {
			label = ent.Labels["en"].Value
		}
		c.labelCache[id] = label
		out[id] = label
	}
	c.labelMu.Unlock()
	return out, nil
}

func dedupeSorted(s []string) []string {
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, rawURL string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%v: %w", err, common.ErrBackendUnavailable)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("wikidata response body close error", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %w", resp.StatusCode, common.ErrBackendUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, common.ErrBackendUnavailable)
	}
	return nil
}
