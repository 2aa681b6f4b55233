package api

import (
	"github.com/gin-gonic/gin"
	"github.com/kod2ulz/fatzebra-gateway/client"
)

// CustomerIPKey is the gin context key holding the resolved customer address.
const CustomerIPKey = "fatzebra.customerIp"

// CustomerIP resolves the end customer address of every request and attaches it to
// the request context, where Gateway calls made with that context pick it up.
func CustomerIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := client.ResolveIP(c.Request)
		c.Set(CustomerIPKey, ip)
		c.Request = c.Request.WithContext(client.ContextWithCustomerIP(c.Request.Context(), ip))
		c.Next()
	}
}
