// Package users provides an HTTP client for the remote users endpoint.
//
// # Overview
//
// The endpoint returns a JSON array of user objects shaped like the
// jsonplaceholder fixture:
//
//	[{"id": 1, "name": "Leanne Graham", "email": "Sincere@april.biz",
//	  "address": {"city": "Gwenborough", ...}, ...}]
//
// Only id, name, email and address.city are read by the directory view. The
// remaining fields are decoded for completeness.
//
// # Error Handling
//
// FetchUsers distinguishes three failure kinds, all reported as errors:
//
//   - Transport failures are wrapped as "execute request: ...".
//   - Non-2xx responses return *StatusError carrying the code and the
//     trimmed body (capped at 512 bytes).
//   - A 2xx body that is empty, null, not an array, or not decodable into
//     users wraps ErrEmptyList.
//
// Use errors.Is and errors.As to classify them.
//
// # Usage Example
//
//	client, err := users.NewClient("", users.WithTimeout(5*time.Second))
//	if err != nil {
//		return err
//	}
//	list, err := client.FetchUsers(ctx)
package users
