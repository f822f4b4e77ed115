/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three ways of responding to an HTTP request:
  - writing plain text
  - rendering JSON data
  - reporting an error
*/
package resp
