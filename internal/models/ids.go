package models

// ContainsID reports whether id is present in the list.
func ContainsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AppendUniqueID appends id unless it is already present, keeping the
// list a set while preserving insertion order.
func AppendUniqueID(ids []string, id string) []string {
	if ContainsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// RemoveID removes every occurrence of id from the list.
func RemoveID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
