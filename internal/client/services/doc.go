// Package services contains the application services of the taskdesk client:
// signing in and out, registration, and task mutations. Services validate
// input before any request is made and keep the session store in step with
// the remote store.
package services
