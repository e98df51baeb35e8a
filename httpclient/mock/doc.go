/*
Package mock provides an in-memory stand-in for httpclient.Client.

Tests configure responses per method and URL with On, fall back to a
default response otherwise, and inspect Calls afterwards. No host call is
ever made.
*/
package mock
