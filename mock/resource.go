package mock

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"net/http"
)

func (b *Backend) tableOf(r *http.Request) *table {
	return b.tables[mux.Vars(r)["resource"]]
}

func decodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (b *Backend) listHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, b.tableOf(r).list())
}

func (b *Backend) createHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	t := b.tableOf(r)
	delete(fields, t.key)
	writeJSON(w, http.StatusCreated, t.public(b.insert(t, fields)))
}

func (b *Backend) getHandler(w http.ResponseWriter, r *http.Request) {
	t := b.tableOf(r)
	item, ok := t.records.Get(mux.Vars(r)["id"])
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, t.public(item.fields))
}

func (b *Backend) updateHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	t := b.tableOf(r)
	updated, ok := b.update(t, mux.Vars(r)["id"], fields, r.Method == http.MethodPatch)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, t.public(updated))
}

func (b *Backend) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if !b.tableOf(r).records.Delete(mux.Vars(r)["id"]) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
