package mock

import (
	"github.com/google/uuid"
	"github.com/viant/leadsdesk/internal/collection"
	"sort"
	"strconv"
	"strings"
	"time"
)

type record struct {
	seq    int64
	fields map[string]any
}

// table is one backend collection keyed by its primary key field.
type table struct {
	key         string
	prefix      string // non-empty: string ids such as L-XXXXXXXXXXXX
	idLength    int
	newestFirst bool
	timestamps  bool
	createdOnly bool
	writeOnly   []string
	records     *collection.SyncMap[string, *record]
}

func (b *Backend) newTables() map[string]*table {
	newTable := func(t *table) *table {
		t.records = collection.NewSyncMap[string, *record]()
		return t
	}
	return map[string]*table{
		"leads":      newTable(&table{key: "lead_id", prefix: "L-", idLength: 12, newestFirst: true, timestamps: true}),
		"followups":  newTable(&table{key: "id", timestamps: true}),
		"meetings":   newTable(&table{key: "id", timestamps: true}),
		"quotations": newTable(&table{key: "quotation_id", timestamps: true}),
		"deals":      newTable(&table{key: "deal_id", prefix: "D-", idLength: 8, timestamps: true}),
		"users":      newTable(&table{key: "id", writeOnly: []string{"password"}}),
		"activities": newTable(&table{key: "id", newestFirst: true, createdOnly: true}),
	}
}

func randomID(prefix string, length int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + raw[:length]
}

func (b *Backend) nextID(t *table) (string, any) {
	if t.prefix != "" {
		id := randomID(t.prefix, t.idLength)
		return id, id
	}
	id := b.ids.Add(1)
	return strconv.FormatInt(id, 10), id
}

func (b *Backend) insert(t *table, fields map[string]any) map[string]any {
	key, id := b.nextID(t)
	fields[t.key] = id
	now := time.Now().UTC().Format(time.RFC3339)
	if t.timestamps || t.createdOnly {
		fields["created_at"] = now
	}
	if t.timestamps {
		fields["edited_at"] = now
	}
	b.assignNested(fields)
	t.records.Put(key, &record{seq: b.seq.Add(1), fields: fields})
	return fields
}

// assignNested gives nested lead PICs and deal details their own ids.
func (b *Backend) assignNested(fields map[string]any) {
	if pics, ok := fields["pics"].([]any); ok {
		for _, item := range pics {
			if pic, ok := item.(map[string]any); ok {
				pic["id"] = b.ids.Add(1)
			}
		}
	}
	if details, ok := fields["details"].([]any); ok {
		for _, item := range details {
			if detail, ok := item.(map[string]any); ok {
				detail["deal_detail_id"] = randomID("DD-", 8)
			}
		}
	}
}

func (b *Backend) update(t *table, key string, fields map[string]any, partial bool) (map[string]any, bool) {
	existing, ok := t.records.Get(key)
	if !ok {
		return nil, false
	}
	b.assignNested(fields)
	merged := map[string]any{}
	if partial {
		for k, v := range existing.fields {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	merged[t.key] = existing.fields[t.key]
	// created_at is read-only
	if created, ok := existing.fields["created_at"]; ok {
		merged["created_at"] = created
	} else {
		delete(merged, "created_at")
	}
	if t.timestamps {
		merged["edited_at"] = time.Now().UTC().Format(time.RFC3339)
	}
	t.records.Put(key, &record{seq: existing.seq, fields: merged})
	return merged, true
}

func (t *table) list() []map[string]any {
	records := t.records.Values()
	sort.Slice(records, func(i, j int) bool {
		if t.newestFirst {
			return records[i].seq > records[j].seq
		}
		return records[i].seq < records[j].seq
	})
	ret := make([]map[string]any, 0, len(records))
	for _, r := range records {
		ret = append(ret, t.public(r.fields))
	}
	return ret
}

// public strips write-only fields.
func (t *table) public(fields map[string]any) map[string]any {
	if len(t.writeOnly) == 0 {
		return fields
	}
	ret := make(map[string]any, len(fields))
	for k, v := range fields {
		ret[k] = v
	}
	for _, k := range t.writeOnly {
		delete(ret, k)
	}
	return ret
}
